/*
Package core holds definitions shared by all packages of the glyph tools,
most notably coded application errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package core
