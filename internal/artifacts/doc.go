// Package artifacts defines the vocabulary shared by the content ingester and
// the bundle loader: artifact kinds, the closed Language and ProjectStatus
// enumerations, the Project and Experience records and the compiled bundle.
//
// The YAML shapes produced and accepted here are the bundle format. Source
// files and compiled bundles use the same key-tagged form:
//
//	Project:
//	  title: ...
//	Experience:
//	  company: ...
//
// Any change to field names, discriminator keys or enumeration spelling is a
// bundle format change.
package artifacts
