// Package chem computes molar masses from chemical formulas.
//
// Formulas are sequences of element symbols with optional counts, grouped
// by parentheses or brackets with their own multipliers, e.g. "Ca(OH)2" or
// "K4[Fe(CN)6]". Hydrate dots ("CuSO4·5H2O") are accepted as well.
package chem
