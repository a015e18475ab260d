// Package pins adapts real GPIO providers to the matrix pin
// capabilities. Each provider lives in its own build-tagged file so the
// core library stays portable: TinyGo machine pins for on-chip GPIO,
// MCP23017 port expanders for I2C-attached columns and rows, and Linux
// GPIO character-device or memory-mapped lines for hosted boards.
package pins
