// Package iou builds intersection-over-union score matrices from
// axis-aligned bounding boxes.
//
// The resulting matrix.Dense has one row per box of the first set
// (detections) and one column per box of the second set (tracks or ground
// truth), with values in [0, 1). It is the usual input of
// matching.NewMatcher when pairing detections with tracks.
package iou
