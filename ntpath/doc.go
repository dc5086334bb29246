/*
Package ntpath manipulates Windows paths on any platform.

Every operation is generic over Path, so a string goes in and a string comes
out, a []byte goes in and a []byte comes out. Both `\` and `/` separate
components on input; operations that rewrite a path emit `\`.

Most operations are purely lexical. AbsPath and RelPath need a WorkingDir for
relative inputs, RealPath and IsMount query an FS. These collaborators are
interfaces so that the same code runs against the host filesystem on Windows
and against an in-memory arena everywhere else.
*/
package ntpath
