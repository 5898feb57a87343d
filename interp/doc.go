// Package interp smooths the motion of a remote entity that is only known
// from discrete, irregularly timed samples.
//
// A Buffer queues incoming samples and plays them back a fixed delay in the
// past, so every rendered pose lies between two samples that have already
// arrived. Position is blended linearly or with a cubic Hermite curve built
// from the sample velocities; rotation is always slerped and scale always
// lerped. The buffer never extrapolates past its newest sample: once the
// queue is down to a single frame, that frame is held in place until another
// sample arrives.
//
// Times are milliseconds on the buffer's own clock, which starts when the
// first sample is seen and advances by the delta passed to Update.
// Velocities are position units per millisecond.
package interp
