package types

// Client -> Server
// ApplySelection:
//   hero: string // ban or pick depending on the current turn
//
// Undo: {}
//
// Reset: {}
//
// SetConfig:
//   battleground: string
//   team: "blue" | "red"
//   battletag: string // optional tracked player for personal win rates

// Server -> Client
// StateSnapshot:
//   version: number
//   state:
//     selections: string[16] // hero per turn index, "" while open
//     cursor: number         // 0..16, 16 = draft complete
//     our_team: "blue" | "red"
//     history: { step, hero, at }[]
//   config: { battleground, our_team, battletag }
//   recommendations: { hero, net_delta, reasons[], suggested_player? }[]
//
// Error:
//   error: string // InvalidSelection / NothingToUndo wording from the core
