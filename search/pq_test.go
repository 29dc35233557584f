package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodePQ_OrdersByCostThenHops(t *testing.T) {
	pq := newNodePQ()

	c1 := mustCost(t, "1.0")
	c2 := mustCost(t, "2.0")

	pq.push(pqEntry{priority: priority{cost: c2, hops: 1, routeSignature: "A", insertionOrder: 0}})
	pq.push(pqEntry{priority: priority{cost: c1, hops: 5, routeSignature: "Z", insertionOrder: 1}})
	pq.push(pqEntry{priority: priority{cost: c1, hops: 1, routeSignature: "B", insertionOrder: 2}})

	require.Nil(t, pq.err)

	first, ok := pq.popMin()
	require.True(t, ok)
	assert.Equal(t, 1, first.priority.hops) // c1/hops1/B beats c1/hops5/Z

	second, ok := pq.popMin()
	require.True(t, ok)
	assert.Equal(t, RouteSignature("Z"), second.priority.routeSignature)

	third, ok := pq.popMin()
	require.True(t, ok)
	assert.Equal(t, RouteSignature("A"), third.priority.routeSignature)

	_, ok = pq.popMin()
	assert.False(t, ok)
}

func TestNodePQ_InsertionOrderTiebreak(t *testing.T) {
	pq := newNodePQ()
	c := mustCost(t, "1.0")

	pq.push(pqEntry{priority: priority{cost: c, hops: 1, routeSignature: "A", insertionOrder: 3}})
	pq.push(pqEntry{priority: priority{cost: c, hops: 1, routeSignature: "A", insertionOrder: 1}})
	pq.push(pqEntry{priority: priority{cost: c, hops: 1, routeSignature: "A", insertionOrder: 2}})

	first, _ := pq.popMin()
	assert.Equal(t, 1, first.priority.insertionOrder)
	second, _ := pq.popMin()
	assert.Equal(t, 2, second.priority.insertionOrder)
	third, _ := pq.popMin()
	assert.Equal(t, 3, third.priority.insertionOrder)
}
