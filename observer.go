package msgtree

//go:generate mockgen -source=$GOFILE -package mock_msgtree -destination=test/mock/$GOFILE

// Observer receives resolution diagnostics. Calls are synchronous and made after the
// resolver has released its lock; a panicking observer is recovered and ignored.
type Observer interface {
	OnKeyMissing(locale string, key string)
	OnTypeMismatch(locale string, key string)
	OnUnknownModifier(locale string, modifier string)
}

func safeObserverCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
