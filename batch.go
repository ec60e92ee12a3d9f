package qrcode

import (
	"image"
	"runtime"
	"sync"
)

// BatchResult is one image's decode outcome within a DecodeAll batch.
type BatchResult struct {
	Metadata Metadata
	Data     []byte
	Err      error
}

// DecodeAll decodes every image concurrently across GOMAXPROCS workers
// draining one job channel, as internal/mask does when scoring the
// eight masking candidates; each worker writes its result straight into
// the image's slot rather than onto a result channel. Results are returned in the same order as
// images; a failure on one image does not stop the others.
func DecodeAll(images []image.Image) []BatchResult {
	results := make([]BatchResult, len(images))
	if len(images) == 0 {
		return results
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(images) {
		numWorkers = len(images)
	}

	type job struct {
		index int
		img   image.Image
	}
	jobChan := make(chan job, len(images))
	for i, img := range images {
		jobChan <- job{index: i, img: img}
	}
	close(jobChan)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				meta, data, err := Decode(j.img)
				results[j.index] = BatchResult{Metadata: meta, Data: data, Err: err}
			}
		}()
	}
	wg.Wait()

	return results
}
