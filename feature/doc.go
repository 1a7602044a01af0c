// Package feature defines the frame-level feature vector shared by all
// extractors in this module.
package feature
