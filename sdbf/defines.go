package sdbf

// Digest parameters. Sizes are in bytes.
const (
	MaxElemCount   = 160
	MaxElemCountDD = 192
	FPThreshold    = 4
	KB             = 1024

	MagicStream    = "sdbf"
	MagicDD        = "sdbf-dd"
	MaxMagicHeader = 512

	BFSize          = 256
	MaxBFSize       = 4096
	Bins            = 1000
	EntrPower       = 10
	EntrScale       = Bins * (1 << EntrPower)
	MaxFiles        = 1000000
	MaxThreads      = 512
	MinFileSize     = 512
	MinElemCount    = 16
	MinRefElemCount = 64
	PopWinSize      = 64
	SDScoreScale    = 0.3
	SyncSize        = 16384

	BigFilter     = 16384
	BigFilterElem = 8738
	BigFilterFP   = 0.01
	BigFilterHash = 5
)
