// Package buffer provides the streaming plumbing used to run batch vital
// sign algorithms on live sample streams: a fixed-capacity [Ring] that
// overwrites its oldest sample, a [Windower] that hands out overlapping
// analysis windows, and a [Pool] of reusable [Buffer]s backing those
// windows.
package buffer
