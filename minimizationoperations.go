package fsa

import (
	"slices"
	"strconv"
)

// Minimize
// Minimizes the given complete deterministic automaton using Moore's partition
// refinement. Starting from {accept states, other states}, every pass splits each
// block by the blocks its members reach on every symbol, until a pass splits nothing.
//
// States of the result are numbered canonically: the block of the initial state is 0,
// the others follow in breadth-first order over the alphabet. Two minimal automata of
// the same language are therefore identical, not only isomorphic.
//
// The input must be deterministic and total (see Totalize); this is not checked.
func Minimize(a *Automaton) *Automaton {
	numStates := a.GetNumStates()
	if numStates == 0 {
		result := NewAutomaton(a.alphabet, a.name)
		result.CreateState()
		return result
	}

	partition := initialPartition(a)
	blockOf := blockIndex(partition, numStates)

	for {
		next := make([][]int, 0, len(partition))
		for _, block := range partition {
			next = append(next, splitBlock(a, block, blockOf)...)
		}
		if len(next) == len(partition) {
			break
		}
		partition = next
		blockOf = blockIndex(partition, numStates)
	}

	order := canonicalOrder(a, partition, blockOf)
	newID := make([]int, len(partition))
	for id, b := range order {
		newID[b] = id
	}

	result := NewAutomatonV1(a.alphabet, a.name, len(partition))
	result.createStates(len(partition))
	for _, b := range order {
		block := partition[b]
		result.SetAccept(newID[b], anyAccept(a, block))

		// All members of a stable block agree on destination blocks; any one will do.
		rep := block[0]
		for _, c := range a.alphabet {
			dest := a.Step(rep, c)
			if dest == -1 {
				continue
			}
			result.addTransition(newID[b], c, newID[blockOf[dest]])
		}
	}

	return result
}

// initialPartition Returns {accept states, other states} without empty blocks. Each
// block is in ascending order.
func initialPartition(a *Automaton) [][]int {
	accept, other := make([]int, 0), make([]int, 0)
	for s := 0; s < a.GetNumStates(); s++ {
		if a.IsAccept(s) {
			accept = append(accept, s)
		} else {
			other = append(other, s)
		}
	}

	partition := make([][]int, 0, 2)
	if len(accept) > 0 {
		partition = append(partition, accept)
	}
	if len(other) > 0 {
		partition = append(partition, other)
	}
	return partition
}

func blockIndex(partition [][]int, numStates int) []int {
	blockOf := make([]int, numStates)
	for i, block := range partition {
		for _, s := range block {
			blockOf[s] = i
		}
	}
	return blockOf
}

// splitBlock Groups the members of block by signature: the tuple, over the alphabet,
// of the block each member reaches. Groups keep the order of first appearance and
// their members stay ascending.
func splitBlock(a *Automaton, block []int, blockOf []int) [][]int {
	groups := make([][]int, 0, 1)
	bySignature := make(map[string]int)

	buf := make([]byte, 0, 8*a.alphabet.Len())
	for _, q := range block {
		buf = buf[:0]
		for _, c := range a.alphabet {
			target := -1
			if dest := a.Step(q, c); dest != -1 {
				target = blockOf[dest]
			}
			buf = strconv.AppendInt(buf, int64(target), 10)
			buf = append(buf, ',')
		}

		key := string(buf)
		i, ok := bySignature[key]
		if !ok {
			i = len(groups)
			bySignature[key] = i
			groups = append(groups, make([]int, 0, len(block)))
		}
		groups[i] = append(groups[i], q)
	}
	return groups
}

// canonicalOrder Returns the block indices in breadth-first order from the block of
// state 0. Blocks that cannot be reached follow, by smallest member.
func canonicalOrder(a *Automaton, partition [][]int, blockOf []int) []int {
	order := make([]int, 0, len(partition))
	seen := make([]bool, len(partition))

	start := blockOf[0]
	seen[start] = true
	order = append(order, start)
	for i := 0; i < len(order); i++ {
		rep := partition[order[i]][0]
		for _, c := range a.alphabet {
			dest := a.Step(rep, c)
			if dest == -1 {
				continue
			}
			if b := blockOf[dest]; !seen[b] {
				seen[b] = true
				order = append(order, b)
			}
		}
	}

	if len(order) < len(partition) {
		rest := make([]int, 0, len(partition)-len(order))
		for b := range partition {
			if !seen[b] {
				rest = append(rest, b)
			}
		}
		slices.SortFunc(rest, func(x, y int) int {
			return partition[x][0] - partition[y][0]
		})
		order = append(order, rest...)
	}
	return order
}
