// Package access normalizes a user's role, admin flag and permission document
// into a single User value and answers capability questions about it.
//
// Permission documents are stored as free-form JSON by the user administration
// tool and the admin flag has several legacy encodings. Both are parsed once
// here so no other package has to deal with them.
package access
