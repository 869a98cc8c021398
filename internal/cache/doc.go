// Package cache provides a small generic LRU cache.
//
//	c := cache.New[rune, *Outline](256)
//	c.Add('A', outline)
//	o, ok := c.Get('A')
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache
