// Package measure interprets ADC readings from the characterizer node
// as NPP-301 bridge resistances, and searches balance resistor options.
package measure
