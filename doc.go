// Package compound computes the future value of an investment made of an
// initial lump sum and recurring contributions.
//
// The core functionalities include:
//   - Projection: the closed-form future value of the principal plus the
//     summed future value of every scheduled contribution, with the total
//     nominal contributions and the interest earned over the horizon.
//   - Annual Breakdown: a year-by-year simulation of the account, giving
//     for each year the start balance, the interest credited, the
//     contributions made, and the end balance, plus running totals.
//   - Goal Seeking: the recurring contribution required to reach a target
//     future value, solved exactly since the future value is affine in the
//     contribution amount.
//
// Amounts are Money values carrying a currency; rates are annual
// percentages; credit schedules are Frequency values (annually through
// daily, or any count per year). Interest compounds on its own schedule,
// independent of the contribution schedule.
//
// This package serves as the foundational logic for the `cic` command-line
// tool.
package compound
