// Package scaffold builds the practice-workspace tree from embedded
// templates. It powers the "leetkit build" command, producing difficulty
// folders, per-topic folders with placeholder solution files, utility script
// stubs, and a README.
package scaffold
