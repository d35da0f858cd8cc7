package service

import (
	"sync"
)

type accountKey struct {
	userID  int64
	guildID int64
}

// AccountLocker serializes mutating engine operations per (user, guild)
// account. Data-access calls suspend on I/O, so two concurrent commands from
// the same user would otherwise interleave their read-modify-write sequences.
type AccountLocker struct {
	mu    sync.Mutex
	locks map[accountKey]*sync.Mutex
}

// NewAccountLocker creates a new account locker
func NewAccountLocker() *AccountLocker {
	return &AccountLocker{
		locks: make(map[accountKey]*sync.Mutex),
	}
}

func (l *AccountLocker) lockFor(key accountKey) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

// Lock acquires the mutex for one account and returns its release function
func (l *AccountLocker) Lock(userID, guildID int64) func() {
	m := l.lockFor(accountKey{userID: userID, guildID: guildID})
	m.Lock()
	return m.Unlock
}

// LockPair acquires the mutexes for two accounts in the same guild.
// Acquisition is ordered by user ID so concurrent two-account operations
// cannot deadlock against each other.
func (l *AccountLocker) LockPair(guildID, userA, userB int64) func() {
	first, second := userA, userB
	if second < first {
		first, second = second, first
	}

	mFirst := l.lockFor(accountKey{userID: first, guildID: guildID})
	mSecond := l.lockFor(accountKey{userID: second, guildID: guildID})

	mFirst.Lock()
	mSecond.Lock()
	return func() {
		mSecond.Unlock()
		mFirst.Unlock()
	}
}
