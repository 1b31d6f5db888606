// Package requirements computes what a user still needs to claim every gift
// set available to them.
//
// The catalog forms a two level recipe graph: gift set to furnishing, and
// furnishing to raw material. Calculate walks it once:
//
//  1. sets with an owned, unclaimed character are eligible
//  2. their furnishing lines are flattened; per furnishing only the largest
//     amount counts
//  3. owned furnishings are subtracted and satisfied lines dropped
//  4. lines without a recipe go to the buy table, the rest to the craft table
//  5. craft recipes are multiplied out, summed per material and netted
//     against owned materials
//
// No eligible set is a normal outcome reported as NothingToClaim.
package requirements
