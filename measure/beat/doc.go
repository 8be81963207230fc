// Package beat detects heartbeats in time-domain biosignals and converts
// beat positions into intervals and rates.
//
// [Detector] works on a whole buffer with a threshold relative to its
// global maximum, the usual way to find R peaks in a conditioned ECG.
// [Tracker] is the streaming counterpart with a fixed absolute threshold.
package beat
