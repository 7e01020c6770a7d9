// Package message maps decoded frames onto typed ANT messages.
//
// Every kind embeds Message (or ChannelMessage, which reserves payload byte 0
// for the channel number) and exposes its fields at fixed offsets through
// setters that validate before writing. Resolve decodes a frame and builds
// the kind registered for its type code.
package message
