package pixelcraft

// ChangeListener receives image-level state change notifications.
//
// Notifications are delivered synchronously, in registration order,
// strictly after the state change has been committed. Implementations
// must not mutate the image from inside a callback.
type ChangeListener interface {
	// ImageReplaced is called when the image's pixel source is swapped
	// out wholesale (e.g. a file was opened into this document).
	ImageReplaced()

	// FileChanged is called when the backing file path changes.
	FileChanged(path string)

	// ModifiedChanged is called when the modified flag flips.
	ModifiedChanged(modified bool)
}

// ListenerFuncs adapts plain functions to ChangeListener.
// Nil fields are simply skipped.
type ListenerFuncs struct {
	OnImageReplaced   func()
	OnFileChanged     func(path string)
	OnModifiedChanged func(modified bool)
}

// ImageReplaced implements ChangeListener.
func (l *ListenerFuncs) ImageReplaced() {
	if l.OnImageReplaced != nil {
		l.OnImageReplaced()
	}
}

// FileChanged implements ChangeListener.
func (l *ListenerFuncs) FileChanged(path string) {
	if l.OnFileChanged != nil {
		l.OnFileChanged(path)
	}
}

// ModifiedChanged implements ChangeListener.
func (l *ListenerFuncs) ModifiedChanged(modified bool) {
	if l.OnModifiedChanged != nil {
		l.OnModifiedChanged(modified)
	}
}

// AddListener registers a listener for state change notifications.
func (m *Image) AddListener(l ChangeListener) {
	if l == nil {
		return
	}
	m.listeners = append(m.listeners, l)
}

// RemoveListener unregisters a previously added listener.
// Listeners are compared by identity.
func (m *Image) RemoveListener(l ChangeListener) {
	for i, cur := range m.listeners {
		if cur == l {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// notifyImageReplaced invokes ImageReplaced on all listeners.
func (m *Image) notifyImageReplaced() {
	for _, l := range m.listeners {
		l.ImageReplaced()
	}
}

// notifyFileChanged invokes FileChanged on all listeners.
func (m *Image) notifyFileChanged(path string) {
	for _, l := range m.listeners {
		l.FileChanged(path)
	}
}

// notifyModifiedChanged invokes ModifiedChanged on all listeners.
func (m *Image) notifyModifiedChanged(modified bool) {
	for _, l := range m.listeners {
		l.ModifiedChanged(modified)
	}
}
