// Package domain contains the core model for graphplot: turning a LaTeX-style
// selection into expressions, classifying it, parsing column vectors and
// assigning plot colors.
//
// The domain is renderer- and host-agnostic: it does not depend on YAML parsing,
// terminals, plotting libraries or the filesystem. Infra/adapters consume these types.
package domain
