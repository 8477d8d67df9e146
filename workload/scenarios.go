package workload

import (
	"iter"
	"slices"

	"github.com/iotaledger/vds/bag"
	"github.com/iotaledger/vds/deque"
	"github.com/iotaledger/vds/list"
	"github.com/iotaledger/vds/orderedmap"
	"github.com/iotaledger/vds/queue"
	"github.com/iotaledger/vds/sortcriterion"
	"github.com/iotaledger/vds/stack"
)

const (
	checksumOffset = 14695981039346656037
	checksumPrime  = 1099511628211

	bagBuckets        = 16
	orderedMapBuckets = 64
)

// scenario runs a workload on its own copy of the seed values and returns the number of container operations it
// performed together with a checksum of the observed values.
type scenario func(values *list.List[uint64]) (operations, checksum uint64)

var scenarios = map[Kind]scenario{
	KindQueue:       queueScenario,
	KindStack:       stackScenario,
	KindDequeRotate: dequeRotateScenario,
	KindSplice:      spliceScenario,
	KindCloneFork:   cloneForkScenario,
	KindBag:         bagScenario,
	KindOrderedMap:  orderedMapScenario,
	KindSort:        sortScenario,
}

// seedValues returns a deterministic pseudo random sequence of the given length.
func seedValues(size int) *list.List[uint64] {
	return list.FromSeq(func(yield func(uint64) bool) {
		state := uint64(0x9e3779b97f4a7c15)
		for range size {
			state ^= state << 13
			state ^= state >> 7
			state ^= state << 17

			if !yield(state) {
				return
			}
		}
	})
}

func mix(checksum, value uint64) uint64 {
	return (checksum ^ value) * checksumPrime
}

func checksumOf(values iter.Seq[uint64]) uint64 {
	checksum := uint64(checksumOffset)
	for value := range values {
		checksum = mix(checksum, value)
	}

	return checksum
}

func queueScenario(values *list.List[uint64]) (operations, checksum uint64) {
	q := queue.FromSeq(values.All())
	operations = uint64(q.Len())

	checksum = checksumOffset
	for !q.IsEmpty() {
		checksum = mix(checksum, q.Dequeue())
		operations++
	}

	return operations, checksum
}

func stackScenario(values *list.List[uint64]) (operations, checksum uint64) {
	s := stack.New[uint64]()
	for value := range values.All() {
		s.Push(value)
		operations++
	}

	checksum = checksumOffset
	for {
		value, exists := s.TryPop()
		if !exists {
			break
		}

		checksum = mix(checksum, value)
		operations++
	}

	return operations, checksum
}

func dequeRotateScenario(values *list.List[uint64]) (operations, checksum uint64) {
	d := deque.FromSeq(values.All())
	if d.IsEmpty() {
		return 0, checksumOffset
	}

	positions := d.Len()/3 + 1
	d.RotateLeft(positions)
	d.RotateRight(1)

	return uint64(positions + 1), checksumOf(d.All())
}

func spliceScenario(values *list.List[uint64]) (operations, checksum uint64) {
	lower, upper := values.Len()/3, 2*values.Len()/3

	reversed := values.Values()[lower:upper]
	slices.Reverse(reversed)

	values.ReplaceSubrange(values.IndexAt(lower), values.IndexAt(upper), reversed...)

	return uint64(len(reversed)), checksumOf(values.All())
}

func cloneForkScenario(values *list.List[uint64]) (operations, checksum uint64) {
	fork := values.Clone()
	fork.Append(uint64(values.Len()))
	fork.Set(fork.StartIndex(), ^fork.At(fork.StartIndex()))
	fork.RemoveLast()

	return 4, mix(checksumOf(values.All()), checksumOf(fork.All()))
}

func bagScenario(values *list.List[uint64]) (operations, checksum uint64) {
	b := bag.NewWithCapacity[uint64](bagBuckets)
	for value := range values.All() {
		b.Add(value % bagBuckets)
		operations++
	}

	for bucket := range uint64(bagBuckets) {
		b.Remove(bucket)
		operations++
	}

	checksum = checksumOffset
	for bucket := range uint64(bagBuckets) {
		checksum = mix(checksum, uint64(b.Count(bucket)))
	}

	return operations, checksum
}

func orderedMapScenario(values *list.List[uint64]) (operations, checksum uint64) {
	o := orderedmap.New[uint64, uint64]()
	for value := range values.All() {
		o.Set(value%orderedMapBuckets, value)
		operations++
	}

	for bucket := uint64(0); bucket < orderedMapBuckets; bucket += 2 {
		o.Delete(bucket)
		operations++
	}

	checksum = checksumOffset
	for key, value := range o.All() {
		checksum = mix(mix(checksum, key), value)
	}

	return operations, checksum
}

func sortScenario(values *list.List[uint64]) (operations, checksum uint64) {
	sortcriterion.SortList(values, sortcriterion.ByKey(func(value uint64) uint64 { return value }))

	return uint64(values.Len()), checksumOf(values.All())
}
