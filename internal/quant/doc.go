// Package quant provides core primitives for stochastic process simulation.
//
// The package defines the fundamental interfaces and types shared by the
// process models, discretization schemes and the Monte-Carlo driver:
//
//   - [State]: vector representing process state
//   - [Process]: interface for SDE state models (dx = mu dt + D dW)
//   - [Observable]/[Observer]: change-notification registry for live inputs
//   - [Metric]: per-path statistic accumulator
//
// # Example
//
//	p := process.NewHeston(riskFree, dividend, s0, 0.04, 1.0, 0.04, 0.2, -0.5)
//	gen := mc.NewGenerator(p, discretize.NewEuler())
//	res, _ := gen.Run(ctx, cfg)
//
// # Thread Safety
//
// Process evaluation is lock-free and safe from multiple goroutines as
// long as no input quote is rebound or mutated concurrently. Observable
// registration is mutex-guarded; notification ordering across concurrent
// mutations is the caller's responsibility.
package quant
