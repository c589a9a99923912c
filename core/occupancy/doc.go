// Package occupancy forecasts hourly crowd levels for charging stations.
package occupancy
