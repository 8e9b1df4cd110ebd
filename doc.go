// Package roadnet finds shortest routes between named cities of a small,
// fixed road network.
//
// What is in the box?
//
//	A thread-safe, dense-matrix road graph and the algorithms around it:
//		• core      – Graph: fixed node list, symmetric weight matrix, snapshots
//		• dijkstra  – single-source shortest paths and start→end routes
//		• matrix    – all-pairs distance table (Floyd–Warshall)
//		• config    – YAML network files and the bundled six-city network
//		• cmd/roadnet – interactive route finder on the terminal
//
// Quick example:
//
//	g, _ := core.NewGraph([]string{"NewYork", "Chicago", "Houston"})
//	_ = g.AddRoad("NewYork", "Chicago", 800)
//	_ = g.AddRoad("Chicago", "Houston", 1000)
//	route, err := dijkstra.ShortestRoute(g, "NewYork", "Houston")
//	// route.Nodes == [NewYork Chicago Houston], route.Distance == 1800
//
// Unknown names fail with core.ErrNodeNotFound and disconnected pairs with
// dijkstra.ErrUnreachable; neither ever yields a partial route.
package roadnet
