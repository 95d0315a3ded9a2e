// Package emwintg is a client for the NWS Emergency Managers Weather
// Information Network (EMWIN) telecommunications gateway.
//
// EMWIN is one of several platforms through which the National Weather
// Service distributes text and image products. The telecommunications
// gateway republishes each feed as a ZIP archive over anonymous HTTPS, so
// using this package requires no credentials.
//
// A Stream polls every feed in its catalog on that feed's own cadence using
// conditional requests, expands fresh archives, and delivers each product at
// most once within a six-hour window, across all feeds:
//
//	stream, err := emwintg.NewTextStream()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer stream.Close()
//
//	for event := range stream.Events() {
//		if event.Err != nil {
//			// The stream keeps running, retrying as needed.
//			log.Printf("recoverable: %v", event.Err)
//			continue
//		}
//		fmt.Printf("%s: %s\n", event.Product.Filename, event.Product.StringContents())
//	}
//
// The sequence has no guaranteed order across feeds and may have gaps,
// either due to EMWIN operational difficulties or network failures. Because
// the dedup namespace is shared across feeds, two feeds that reuse one
// product name for different content will only deliver the first.
package emwintg
