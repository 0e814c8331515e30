// Package cli implements the till command line interface.
//
// The register is driven through `till pos`, an interactive loop over
// stdin. One-shot commands exist for the product catalog and the
// password-gated history listing. All commands support text and JSON
// output via the global --format flag.
package cli
