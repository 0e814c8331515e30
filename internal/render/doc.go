// Package render produces the printable register tape and the admin
// history listing.
//
// Output is plain text shaped for a 40-column receipt printer. The
// actual print mechanism is outside this program; rendering to a writer
// is the hand-off point. Amounts are formatted with thousands
// separators via golang.org/x/text.
package render
