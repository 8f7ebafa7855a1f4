// Package catalog holds function declarations for call resolution and loads
// static contexts, namespace declarations plus functions, from TOML files.
//
// A static context file looks like:
//
//	default-element-namespace = "urn:example:doc"
//	default-function-namespace = "http://www.w3.org/2005/xpath-functions"
//
//	[[namespace]]
//	prefix = "ex"
//	uri = "urn:example"
//
//	[[function]]
//	name = "ex:join"
//	return = "xs:string"
//	variadic = true
//
//	  [[function.param]]
//	  name = "sep"
//	  type = "xs:string"
//
//	  [[function.param]]
//	  name = "parts"
//	  type = "xs:string*"
//
// Function names are expanded with the file's own declarations in the
// function declaration context.
package catalog
