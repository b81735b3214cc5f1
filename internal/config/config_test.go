package config

import (
	"testing"
)

func TestParsePeers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Peer
		wantErr bool
	}{
		{
			name:  "empty string",
			input: "",
			want:  []Peer{},
		},
		{
			name:  "single peer",
			input: "0=127.0.0.1:50051",
			want: []Peer{
				{ID: 0, Addr: "127.0.0.1:50051"},
			},
		},
		{
			name:  "multiple peers",
			input: "0=127.0.0.1:50051,1=127.0.0.1:50052,2=127.0.0.1:50053",
			want: []Peer{
				{ID: 0, Addr: "127.0.0.1:50051"},
				{ID: 1, Addr: "127.0.0.1:50052"},
				{ID: 2, Addr: "127.0.0.1:50053"},
			},
		},
		{
			name:  "with spaces",
			input: "0 = 127.0.0.1:50051 , 1 = 127.0.0.1:50052",
			want: []Peer{
				{ID: 0, Addr: "127.0.0.1:50051"},
				{ID: 1, Addr: "127.0.0.1:50052"},
			},
		},
		{
			name:  "unsorted input comes back sorted by id",
			input: "2=c,0=a,1=b",
			want: []Peer{
				{ID: 0, Addr: "a"},
				{ID: 1, Addr: "b"},
				{ID: 2, Addr: "c"},
			},
		},
		{
			name:    "invalid format - no equals",
			input:   "0:127.0.0.1:50051",
			wantErr: true,
		},
		{
			name:    "invalid format - non-integer id",
			input:   "n1=127.0.0.1:50051",
			wantErr: true,
		},
		{
			name:    "invalid format - negative id",
			input:   "-1=127.0.0.1:50051",
			wantErr: true,
		},
		{
			name:    "invalid format - empty addr",
			input:   "0=",
			wantErr: true,
		},
		{
			name:    "duplicate id",
			input:   "0=a,0=b",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeers(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePeers() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if len(got) != len(tt.want) {
					t.Errorf("ParsePeers() length = %d, want %d", len(got), len(tt.want))
					return
				}
				for i := range got {
					if got[i] != tt.want[i] {
						t.Errorf("ParsePeers()[%d] = %v, want %v", i, got[i], tt.want[i])
					}
				}
			}
		})
	}
}

func fourNodeConfig(protocol Protocol) *Config {
	return &Config{
		NodeID:     1,
		ListenAddr: "127.0.0.1:50052",
		Protocol:   protocol,
		Peers: []Peer{
			{ID: 0, Addr: "127.0.0.1:50051"},
			{ID: 1, Addr: "127.0.0.1:50052"},
			{ID: 2, Addr: "127.0.0.1:50053"},
			{ID: 3, Addr: "127.0.0.1:50054"},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid mutex config",
			mutate: func(c *Config) {},
		},
		{
			name: "valid byzantine config",
			mutate: func(c *Config) {
				c.Protocol = ProtocolByzantine
				c.FaultBound = 1
				c.Commander = 0
			},
		},
		{
			name:    "node id absent from peer table",
			mutate:  func(c *Config) { c.NodeID = 9 },
			wantErr: true,
		},
		{
			name: "fault bound violates N>3m",
			mutate: func(c *Config) {
				c.Protocol = ProtocolByzantine
				c.FaultBound = 2
				c.Commander = 0
			},
			wantErr: true,
		},
		{
			name: "N=3m exactly is rejected",
			mutate: func(c *Config) {
				c.Protocol = ProtocolByzantine
				c.Peers = c.Peers[:3]
				c.FaultBound = 1
				c.Commander = 0
			},
			wantErr: true,
		},
		{
			name: "negative fault bound",
			mutate: func(c *Config) {
				c.Protocol = ProtocolByzantine
				c.FaultBound = -1
				c.Commander = 0
			},
			wantErr: true,
		},
		{
			name: "commander absent from peer table",
			mutate: func(c *Config) {
				c.Protocol = ProtocolByzantine
				c.FaultBound = 1
				c.Commander = 9
			},
			wantErr: true,
		},
		{
			name:    "unknown protocol",
			mutate:  func(c *Config) { c.Protocol = "paxos" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fourNodeConfig(ProtocolMutex)
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Others(t *testing.T) {
	cfg := fourNodeConfig(ProtocolMutex)
	others := cfg.Others()
	want := []int{0, 2, 3}
	if len(others) != len(want) {
		t.Fatalf("Expected %d others, got %d", len(want), len(others))
	}
	for i := range want {
		if others[i] != want[i] {
			t.Errorf("Others()[%d] = %d, want %d", i, others[i], want[i])
		}
	}
}
