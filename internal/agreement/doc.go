// Package agreement implements the Byzantine Oral Messages protocol OM(m).
// The commander issues a binary order to every lieutenant; lieutenants relay
// what they received along explicit, growing paths, bounded by m relay
// levels, and finally decide by majority over the values collected per path.
// Traitors invert every value they forward but store what they were told.
// The protocol tolerates up to m traitors when totalNodes > 3m.
package agreement
