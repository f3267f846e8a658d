// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every mutation is a saga operation (see package saga): a list of steps
// against entity stores and the soft-link registry that is either committed
// in full or compensated in reverse. Deletes follow one order throughout:
// dismiss links, delete owned children, delete the entity.
package app
