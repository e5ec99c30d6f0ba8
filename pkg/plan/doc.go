// Package plan compares two parsed states and yields the commands that move
// the current state to the target state.
//
// A plan has two phases, always in this order:
//
//  1. Removals: the current action log walked backwards. An identity missing
//     from the target's table of the same domain is removed.
//  2. Installs: the target action log walked forwards. An identity missing
//     from the current table is installed, an identity with a different
//     payload is updated, and an identical one yields nothing.
//
// Each domain handler decides what its remove, install and update commands
// look like. Plans are lazy: Steps and Commands return iter.Seq values that
// do no work until ranged over, and stopping early costs nothing.
package plan
