// Package interop converts between gee types and the geometry types of
// ebitengine and the chipmunk physics port. It lives in its own package
// so that users of the core library do not pull in either engine.
package interop
