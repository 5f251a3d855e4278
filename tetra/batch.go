package tetra

import (
	"sync"

	"github.com/tetracrypt/tetra/tetra/ledger"
)

// DefaultBatchWorkers bounds concurrent digest computation in RecordBatch.
const DefaultBatchWorkers = 8

// RecordBatch records many payloads. Encryption and digesting run on up to
// workers goroutines; appends happen in input order afterwards, so the chain
// order always matches the payload order. On any failure nothing is
// appended.
func (n *Nexus) RecordBatch(payloads [][]byte, workers int) ([]ledger.Block, error) {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	encoded := make([][]byte, len(payloads))
	errs := make([]error, len(payloads))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, payload := range payloads {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, payload []byte) {
			defer wg.Done()
			defer func() { <-sem }()
			encoded[i], errs[i] = n.process(payload)
		}(i, payload)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	blocks := make([]ledger.Block, len(encoded))
	for i, e := range encoded {
		blocks[i] = n.chain.Append(e)
	}
	return blocks, nil
}
