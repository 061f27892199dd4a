package types

// StateSnapshot:
//   version: number
//   session_code: string
//   state: full draft state (selections by turn index, cursor, history)
//   config: { battleground, our_team, battletag }
//   recommendations: ranked for the current turn, already ordered by
//     net_delta desc with lexical tie-break; consumers truncate for display
