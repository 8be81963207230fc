// Package smooth provides non-recursive smoothing filters: an edge-padded
// moving average, a median filter for impulsive noise, and a streaming
// running average for sample-at-a-time use.
package smooth
