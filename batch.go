package cretrit

import (
	"fmt"
	"runtime"
	"sync"
)

// BatchConfig controls BatchEncryptor's worker pool.
type BatchConfig struct {
	// MaxWorkers is the maximum number of worker goroutines. If 0,
	// defaults to runtime.NumCPU().
	MaxWorkers int

	// MinItemsForParallel is the minimum batch size before the
	// worker pool is used at all; smaller batches run sequentially
	// on the calling goroutine. Must be at least 1; DefaultBatchConfig
	// sets it to 4.
	MinItemsForParallel int
}

// Validate checks that the batch configuration's bounds make sense.
func (cfg *BatchConfig) Validate() error {
	if cfg.MaxWorkers < 0 {
		return &RangeError{Field: "MaxWorkers", Value: cfg.MaxWorkers, Message: "cannot be negative"}
	}
	if cfg.MaxWorkers > 1024 {
		return &RangeError{Field: "MaxWorkers", Value: cfg.MaxWorkers, Message: "must not exceed 1024"}
	}
	if cfg.MinItemsForParallel < 1 {
		return &RangeError{Field: "MinItemsForParallel", Value: cfg.MinItemsForParallel, Message: "must be at least 1"}
	}
	return nil
}

// DefaultBatchConfig returns the default worker pool configuration.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		MaxWorkers:          runtime.NumCPU(),
		MinItemsForParallel: 4,
	}
}

// BatchEncryptor runs many FullEncrypt or RightEncrypt calls against a
// single Cipher across a worker pool, useful for bulk-loading a
// dataset into comparison-revealing form.
type BatchEncryptor struct {
	cipher *Cipher
	config BatchConfig
}

// NewBatchEncryptor builds a BatchEncryptor around cipher using
// config.
func NewBatchEncryptor(cipher *Cipher, config BatchConfig) (*BatchEncryptor, error) {
	if cipher == nil {
		return nil, ErrNilCipher
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &BatchEncryptor{cipher: cipher, config: config}, nil
}

type batchJob struct {
	plaintext *PlainText
	result    *CipherText
	err       error
}

// FullEncryptAll encrypts every value in values into full ciphertexts,
// preserving input order. If any single encryption fails, the first
// error encountered is returned and the rest of the batch is still
// completed.
func (b *BatchEncryptor) FullEncryptAll(values []*PlainText) ([]*CipherText, error) {
	return b.run(values, b.cipher.FullEncrypt)
}

// RightEncryptAll encrypts every value in values into right-only
// ciphertexts, preserving input order.
func (b *BatchEncryptor) RightEncryptAll(values []*PlainText) ([]*CipherText, error) {
	return b.run(values, b.cipher.RightEncrypt)
}

func (b *BatchEncryptor) run(values []*PlainText, encrypt func(*PlainText) (*CipherText, error)) ([]*CipherText, error) {
	if len(values) == 0 {
		return nil, nil
	}

	jobs := make([]batchJob, len(values))
	for i, v := range values {
		jobs[i].plaintext = v
	}

	if len(values) < b.config.MinItemsForParallel {
		for i := range jobs {
			jobs[i].result, jobs[i].err = encrypt(jobs[i].plaintext)
		}
	} else {
		b.runParallel(jobs, encrypt)
	}

	out := make([]*CipherText, len(jobs))
	var firstErr error
	for i, j := range jobs {
		if j.err != nil && firstErr == nil {
			firstErr = j.err
		}
		out[i] = j.result
	}
	return out, firstErr
}

func (b *BatchEncryptor) runParallel(jobs []batchJob, encrypt func(*PlainText) (*CipherText, error)) {
	numWorkers := b.config.MaxWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(jobs) {
		numWorkers = len(jobs)
	}

	var wg sync.WaitGroup
	jobChan := make(chan int, len(jobs))

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				func() {
					defer func() {
						if r := recover(); r != nil {
							jobs[idx].err = &InternalError{Message: fmt.Sprintf("panic in encryption worker: %v", r)}
						}
					}()
					jobs[idx].result, jobs[idx].err = encrypt(jobs[idx].plaintext)
				}()
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
}
