/*
Command treedemo builds the sample trees and prints them.

	treedemo menu --treeprint
	treedemo menu --path 1,0,0,0
	treedemo generic --leaves --color
	treedemo generic --dot > generic.dot

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The TreeBuilder Authors

*/
package main

func main() {
	Execute()
}
