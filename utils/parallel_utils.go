package utils

import "sync"

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// NewBlockPartitionMap cuts [0, maxIndex) into contiguous buckets of blockSize
// items, the last bucket holding the remainder
func NewBlockPartitionMap(maxIndex, blockSize int) (pm *PartitionMap) {
	if blockSize < 1 {
		blockSize = 1
	}
	var (
		nb = (maxIndex + blockSize - 1) / blockSize
	)
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: nb,
		Partitions:     make([][2]int, nb),
	}
	for n := 0; n < nb; n++ {
		pm.Partitions[n] = [2]int{n * blockSize, min((n+1)*blockSize, maxIndex)}
	}
	return
}

func (pm *PartitionMap) GetBucket(kDim int) (bucketNum, min, max int) {
	_, bucketNum, min, max = pm.getBucketWithTryCount(kDim)
	return
}

func (pm *PartitionMap) getBucketWithTryCount(kDim int) (tryCount, bucketNum, min, max int) {
	if kDim < 0 || kDim >= pm.MaxIndex {
		return 0, -1, 0, 0
	}
	// Initial guess
	bucketNum = int(float64(pm.ParallelDegree*kDim) / float64(pm.MaxIndex))
	for !(pm.Partitions[bucketNum][0] <= kDim && pm.Partitions[bucketNum][1] > kDim) {
		if pm.Partitions[bucketNum][0] > kDim {
			bucketNum--
		} else {
			bucketNum++
		}
		if bucketNum == -1 || bucketNum == pm.ParallelDegree {
			return 0, -1, 0, 0
		}
		tryCount++
	}
	min, max = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	if bn == -1 {
		kMax = pm.MaxIndex
		return
	}
	var (
		k1, k2 = pm.GetBucketRange(bn)
	)
	kMax = k2 - k1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into c.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// ParallelFor runs fn once per bucket of pm on NP worker goroutines and returns
// when every bucket is done. Buckets are handed out in no particular order.
func ParallelFor(pm *PartitionMap, NP int, fn func(bn, kMin, kMax int)) {
	var (
		wg      = sync.WaitGroup{}
		buckets = make(chan int, pm.ParallelDegree)
	)
	if NP < 1 {
		NP = 1
	}
	if NP > pm.ParallelDegree {
		NP = pm.ParallelDegree
	}
	for bn := 0; bn < pm.ParallelDegree; bn++ {
		buckets <- bn
	}
	close(buckets)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			for bn := range buckets {
				kMin, kMax := pm.GetBucketRange(bn)
				fn(bn, kMin, kMax)
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
}
