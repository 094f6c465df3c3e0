//go:build !dev

package core

const strictContracts = false
