// Package lite runs one intercepted operation over many inputs at once.
// The adapters keep no state, so a single engine built with solo.Wrap1 is
// shared by every worker without locking.
//
// - Run/RunObserved: stream inputs through a fixed number of locomotives
// - Map: order-preserving batch on top of errgroup
//
// For the worker loop itself, see package core.
package lite
