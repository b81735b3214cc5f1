package main

import (
	"context"
	"flag"
	"log"
	"time"

	"garrison/internal/agreement"
	"garrison/internal/config"
	"garrison/internal/node"
)

func main() {
	nodeID := flag.Int("node-id", 0, "this node's id")
	listen := flag.String("listen", ":8000", "listen address")
	peersStr := flag.String("peers", "", "peer table as id=addr pairs, every node including self")
	protocol := flag.String("protocol", "mutex", "protocol to run: mutex or byzantine")
	faultBound := flag.Int("m", 0, "fault bound m, byzantine only")
	commander := flag.Int("commander", 0, "commander node id, byzantine only")
	traitor := flag.Bool("traitor", false, "whether this node lies when forwarding, byzantine only")
	orderStr := flag.String("order", "ATTACK", "the commander's initial order: ATTACK or RETREAT")
	requestAfter := flag.Duration("request-after", 0, "mutex: request the critical section after this delay (0 disables)")
	holdFor := flag.Duration("hold-for", 2*time.Second, "mutex: how long to hold the critical section")
	initiateAfter := flag.Duration("initiate-after", 2*time.Second, "byzantine: the commander initiates after this delay")
	decideAfter := flag.Duration("decide-after", 5*time.Second, "byzantine: lieutenants decide after this delay")
	flag.Parse()

	peers, err := config.ParsePeers(*peersStr)
	if err != nil {
		log.Fatalf("invalid peers: %v", err)
	}

	cfg := &config.Config{
		NodeID:     *nodeID,
		ListenAddr: *listen,
		Protocol:   config.Protocol(*protocol),
		Peers:      peers,
		FaultBound: *faultBound,
		Commander:  *commander,
		Traitor:    *traitor,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	n, err := node.NewNode(cfg)
	if err != nil {
		log.Fatalf("failed to create node: %v", err)
	}

	switch cfg.Protocol {
	case config.ProtocolMutex:
		if *requestAfter > 0 {
			go runMutexCycle(n, cfg.NodeID, *requestAfter, *holdFor)
		}
	case config.ProtocolByzantine:
		if cfg.NodeID == cfg.Commander {
			order, err := agreement.ParseOrder(*orderStr)
			if err != nil {
				log.Fatalf("invalid order: %v", err)
			}
			go func() {
				time.Sleep(*initiateAfter)
				if err := n.Agreement().InitiateCommand(context.Background(), order); err != nil {
					log.Printf("[%d] initiate failed: %v", cfg.NodeID, err)
				}
			}()
		} else {
			go func() {
				time.Sleep(*decideAfter)
				decision, err := n.Agreement().Decide()
				if err != nil {
					log.Printf("[%d] decide failed: %v", cfg.NodeID, err)
					return
				}
				log.Printf("[%d] final decision: %s", cfg.NodeID, decision)
			}()
		}
	}

	if err := n.Start(); err != nil {
		log.Fatalf("node stopped: %v", err)
	}
}

// runMutexCycle simulates one contender: wait, request, hold, release.
func runMutexCycle(n *node.Node, id int, after, hold time.Duration) {
	time.Sleep(after)
	ctx := context.Background()

	if err := n.Coordinator().RequestCS(ctx); err != nil {
		log.Printf("[%d] request failed: %v", id, err)
		return
	}
	log.Printf("[%d] ========== entered critical section ==========", id)
	time.Sleep(hold)
	log.Printf("[%d] ========== leaving critical section ==========", id)

	if err := n.Coordinator().ReleaseCS(ctx); err != nil {
		log.Printf("[%d] release failed: %v", id, err)
	}
}
