// Package core contains plumbing for running intercepted operations
// concurrently: channel helpers, worker configuration via context, and the
// locomotive that drives one worker. It does not intercept anything itself;
// engines are usually built with solo.Wrap1.
package core
