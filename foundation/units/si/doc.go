// File: doc.go
// Title: Package Documentation for si
// Description: Package si defines SI dimension tags, unit tags and
//              constructors for the quantity package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package si defines quantity kinds of the International System of Units.
//
// Every kind contributes a dimension tag (Length, Time, Velocity, ...),
// one unit tag per supported scale (Metre, Kilometre, ...) and
// constructors for a canonical integral and a canonical floating
// representation:
//
//	d := si.Kilometres(2)      // quantity.Quantity[si.Length, si.Kilometre, int64]
//	t := si.HoursF(0.5)        // quantity.Quantity[si.Time, si.Hour, float64]
//
// Catalog lists every unit defined here.
package si
