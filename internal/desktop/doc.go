/*
Package desktop holds the shell state of the desktop: the open window
records, the launch counter, and the background.

State is a value. Launch, Close and SetBackground return the next State and
never write through to the previous one:

	s := desktop.NewState(desktop.DefaultCascade)
	s = s.Launch(app)        // "app-0" at (100, 100)
	s = s.Launch(app)        // "app-1" at (130, 130)
	s = s.Close("app-0")

Window geometry is not part of this state; each window owns its own.
*/
package desktop
