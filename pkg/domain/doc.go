// Package domain contains the core entities shared across the harness:
// trend signals collected from crawlers, forecasted trends, and the retail
// catalog (SKUs and point-of-sale records) the inventory reports are built
// from. The types carry no persistence or transport concerns.
package domain
