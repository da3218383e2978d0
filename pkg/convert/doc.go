// Package convert turns uploaded study material into a single PDF and reads
// back what the categorizer needs from it: page count, a short sample and
// its text layer.
package convert
