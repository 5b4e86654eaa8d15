// Package counter maintains a persisted download counter.
//
// The counter is a non-negative integer stored under StorageKey as a base-10
// string. Storage is injected through the Store interface:
//
//	c, err := counter.New(store.NewMemory(), logger)
//	if err != nil {
//	    return err
//	}
//	if err := c.Increment(); err != nil {
//	    logger.Warn("count not saved", zap.Error(err))
//	}
//
// Corrupt stored values never fail construction: they are read as 0 and
// overwritten on the next Increment or Reset.
package counter
