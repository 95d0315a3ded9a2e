package emwintg

import "time"

// gatewayBase is the operational telecommunications gateway path. Archives
// republished here carry on average ~90 seconds of latency and products up
// to 3-4 hours old.
const gatewayBase = "https://tgftp.nws.noaa.gov/SL.us008001/CU.EMWIN/DF.xt/DC.gsatR/OPS/"

// Feed describes one remote endpoint to poll. The catalog is fixed when the
// stream is constructed.
type Feed struct {
	// Name identifies the feed in logs.
	Name string
	// URL is the absolute address of the feed's ZIP archive.
	URL string
	// RefetchInterval is the polling cadence. Second granularity.
	RefetchInterval time.Duration
	// MaxTicks, when positive, bounds how many polls the feed performs
	// before exiting cleanly. Zero means poll until the stream is closed.
	MaxTicks int
}

// TextFeeds returns the catalog of EMWIN text product feeds.
//
// The 6-minute and 20-minute archives are sampled three times each at
// startup to backfill recent history, then left to the hourly feed; the
// 2-minute archive is polled continuously for low-latency delivery.
func TextFeeds() []Feed {
	return []Feed{
		{
			Name:            "text-2min",
			URL:             gatewayBase + "txtmin02.zip",
			RefetchInterval: 47 * time.Second,
		},
		{
			Name:            "text-6min",
			URL:             gatewayBase + "txtmin06.zip",
			RefetchInterval: 6 * time.Minute,
			MaxTicks:        3,
		},
		{
			Name:            "text-20min",
			URL:             gatewayBase + "txtmin20.zip",
			RefetchInterval: 20 * time.Minute,
			MaxTicks:        3,
		},
		{
			Name:            "text-3hr",
			URL:             gatewayBase + "txthrs03.zip",
			RefetchInterval: time.Hour, // regenerated hourly
		},
	}
}

// ImageFeeds returns the catalog of EMWIN image product feeds.
func ImageFeeds() []Feed {
	return []Feed{
		{
			Name:            "image-15min",
			URL:             gatewayBase + "imgmin15.zip",
			RefetchInterval: 352 * time.Second,
		},
		{
			Name:            "image-3hr",
			URL:             gatewayBase + "imghrs03.zip",
			RefetchInterval: time.Hour, // regenerated hourly
		},
	}
}
