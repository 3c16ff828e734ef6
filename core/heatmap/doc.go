/*
Package heatmap creates the Gaussian tile used to mark clusters and cluster
boundaries in the auxiliary training rasters.

A Kernel is generated once from a size and a spread ratio and is read-only
afterwards. Stamped regions are always resized copies of the kernel.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package heatmap
