package authprovider

import "time"

func (l *Local) SetNow(now func() time.Time) {
	l.now = now
}
