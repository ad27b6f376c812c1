package bloom

// cutoffs holds the expected overlap by chance for large (16KiB) filters,
// indexed by density (filter bits per element, summed over both filters).
// The values are empirical and must not be recomputed.
var cutoffs = [129]int64{
	86511, 86511, 86511, 86511, 67010, 52623, 42139, 34377, 28532, 24026, 20499, 17687,
	15407, 13535, 11982, 10685, 9589, 8652, 7846, 7149, 6541, 6008, 5537, 5121,
	4745, 4413, 4115, 3850, 3606, 3388, 3185, 3001, 2834, 2681, 2538, 2407,
	2287, 2176, 2072, 1977, 1888, 1802, 1724, 1651, 1583, 1519, 1458, 1402,
	1348, 1298, 1248, 1204, 1161, 1120, 1083, 1047, 1013, 981, 949, 921,
	892, 866, 839, 815, 791, 768, 747, 726, 706, 688, 669, 652,
	635, 619, 603, 589, 575, 561, 546, 533, 521, 510, 498, 487,
	476, 467, 456, 447, 438, 429, 420, 411, 403, 395, 387, 380,
	373, 365, 358, 351, 345, 338, 332, 326, 320, 314, 309, 303,
	298, 293, 288, 284, 279, 275, 271, 266, 262, 258, 254, 250,
	246, 242, 238, 235, 231, 228, 225, 221, 218,
}

// Cutoff returns the chance overlap for density mn. Densities past the end
// of the table extrapolate linearly downwards and may go negative.
func Cutoff(mn int) int64 {
	last := len(cutoffs) - 1
	if mn > last {
		return cutoffs[last] - int64(mn-last)
	}
	return cutoffs[mn]
}
