// Package recommend ranks charging stations for a driver using a weighted
// multi-factor score with mode-dependent weights.
package recommend
