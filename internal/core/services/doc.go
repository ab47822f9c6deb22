// Package services implements the driving ports by orchestrating the
// core pipeline: extract, normalize, segment, score, align.
package services
