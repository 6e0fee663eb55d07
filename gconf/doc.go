/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Every extension keeps at most one configuration object, stored under the
"_c:<package>" key. A configuration is loaded from the genesis file with
InitConfig and can be changed later by its owner with the
UpdateConfigurationHandler.
*/
package gconf
