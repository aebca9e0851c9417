// Package sample turns curves into point paths and summarises them.
//
// Step walks t by a fixed increment, Count spreads n points over one period
// without repeating the start and Inclusive spreads n points from t = 0 to
// t = 1. Fingerprint gives a short stable digest of a path so that two runs
// (or two machines) can confirm they produced the same points.
package sample
